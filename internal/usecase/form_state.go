package usecase

import "fmt"

// FormState is the lifecycle of one admin form.
type FormState string

const (
	FormIdle       FormState = "idle"
	FormLoading    FormState = "loading"
	FormEditing    FormState = "editing"
	FormSubmitting FormState = "submitting"
	FormSuccess    FormState = "success"
	FormFailure    FormState = "failure"
)

var formTransitions = map[FormState][]FormState{
	FormIdle:       {FormLoading, FormEditing},
	FormLoading:    {FormEditing, FormFailure},
	FormEditing:    {FormSubmitting},
	FormSubmitting: {FormSuccess, FormFailure},
	FormFailure:    {FormEditing},
	FormSuccess:    {},
}

// FormMachine enforces the legal transitions of a FormState.
type FormMachine struct {
	state FormState
}

func NewFormMachine() *FormMachine {
	return &FormMachine{state: FormIdle}
}

func (m *FormMachine) State() FormState {
	return m.state
}

func (m *FormMachine) To(next FormState) error {
	for _, allowed := range formTransitions[m.state] {
		if allowed == next {
			m.state = next
			return nil
		}
	}
	return fmt.Errorf("illegal form transition %s -> %s", m.state, next)
}

// Submit drives editing -> submitting -> success|failure around fn. The
// returned state is final for the request. A *ValidationError from fn means
// the form was rejected before any write, so the state stays editing.
func (m *FormMachine) Submit(fn func() error) (FormState, error) {
	if m.state == FormIdle {
		if err := m.To(FormEditing); err != nil {
			return m.state, err
		}
	}
	if err := m.To(FormSubmitting); err != nil {
		return m.state, err
	}
	if err := fn(); err != nil {
		if IsValidation(err) {
			m.state = FormEditing
			return m.state, err
		}
		_ = m.To(FormFailure)
		return m.state, err
	}
	_ = m.To(FormSuccess)
	return m.state, nil
}
