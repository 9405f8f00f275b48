package stepform

// View is a render-ready snapshot of the controller for presentation hosts.
type View struct {
	Step    Step        `json:"step"`
	Title   string      `json:"title"`
	Tabs    []StepTab   `json:"tabs"`
	Rows    []FieldView `json:"rows"`
	IsFirst bool        `json:"isFirst"`
	IsLast  bool        `json:"isLast"`
	Valid   bool        `json:"valid"`
}

// StepTab describes one entry of the step indicator.
type StepTab struct {
	Number int    `json:"number"`
	Title  string `json:"title"`
	Active bool   `json:"active"`
}

// FieldView is one field row: its input on steps one and two, its summary
// line on the review step.
type FieldView struct {
	Name      string `json:"name"`
	Label     string `json:"label"`
	InputType string `json:"inputType"`
	Value     string `json:"value"`
	Error     string `json:"error,omitempty"`
	Optional  bool   `json:"optional,omitempty"`
}

// View builds the presentation snapshot for the current step.
func (c *Controller) View() View {
	return BuildView(c.step, c.data, c.errors)
}

// BuildView assembles a View from explicit state. Hosts that keep state
// elsewhere (for example, a rendered preview of a stored snapshot) use it
// directly.
func BuildView(step Step, data FormData, errs ErrorMap) View {
	if !step.Valid() {
		step = StepContact
	}
	view := View{
		Step:    step,
		Title:   step.Title(),
		IsFirst: step == StepContact,
		IsLast:  step.Terminal(),
		Valid:   len(errs) == 0,
	}
	for _, s := range Steps() {
		view.Tabs = append(view.Tabs, StepTab{
			Number: int(s),
			Title:  s.Title(),
			Active: s == step,
		})
	}
	for _, field := range step.Fields() {
		view.Rows = append(view.Rows, FieldView{
			Name:      string(field),
			Label:     field.Label(),
			InputType: field.InputType(),
			Value:     data.Get(field),
			Error:     errs[field],
			Optional:  field.Optional(),
		})
	}
	return view
}
