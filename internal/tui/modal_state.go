package tui

// ModalType identifies which modal is open.
type ModalType int

const (
	ModalNone ModalType = iota
	ModalSprintCreate
	ModalTaskCreate
	ModalConfirm
)

// ModalState is the interface implemented by every modal's state object.
type ModalState interface {
	Type() ModalType
}

// ActiveModal returns the open modal's type, or ModalNone.
func (m Model) ActiveModal() ModalType {
	if m.modal == nil {
		return ModalNone
	}
	return m.modal.Type()
}
