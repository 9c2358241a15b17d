package entity

import "fmt"

// ClassDescriptor identifies a concrete UI type on the toolkit side of the
// boundary (a window class, a view class, a view-model class).
//
// The runtime never calls into a descriptor. It only stores it and hands it
// back to the UI layer inside actions, so any toolkit value satisfies it.
type ClassDescriptor interface{}

// Descriptors groups the three class descriptors a session is built from.
type Descriptors struct {
	Window    ClassDescriptor
	View      ClassDescriptor
	ViewModel ClassDescriptor
}

// Validate reports which descriptor is missing, if any.
func (d Descriptors) Validate() error {
	switch {
	case d.Window == nil:
		return fmt.Errorf("window class: %w", ErrNilDescriptor)
	case d.View == nil:
		return fmt.Errorf("view class: %w", ErrNilDescriptor)
	case d.ViewModel == nil:
		return fmt.Errorf("view model class: %w", ErrNilDescriptor)
	}
	return nil
}

// DescriptorLabel renders a descriptor for logs using its dynamic type only.
func DescriptorLabel(d ClassDescriptor) string {
	if d == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%T", d)
}
