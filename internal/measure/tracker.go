package measure

// FieldErrors maps a field to its inline validation message.
type FieldErrors map[Field]string

// Tracker owns the entry form: the draft, its errors, the saved list and the
// chart data derived from that list. It is not safe for concurrent use; the
// UI loop or a single command owns it.
type Tracker struct {
	measurements []Measurement
	draft        Measurement
	errors       FieldErrors
	chart        ChartData
}

// NewTracker returns an empty tracker with a zero draft.
func NewTracker() *Tracker {
	return &Tracker{
		errors: FieldErrors{},
		chart:  DeriveChart(nil),
	}
}

// UpdateField stores the coerced raw value into the draft and clears any
// error recorded for that field.
func (t *Tracker) UpdateField(f Field, raw string) {
	t.draft = t.draft.With(f, ParseValue(raw))
	delete(t.errors, f)
}

// Set is UpdateField addressed by input name.
func (t *Tracker) Set(name, raw string) error {
	f, err := ParseField(name)
	if err != nil {
		return err
	}
	t.UpdateField(f, raw)
	return nil
}

// Validate reports a required-message for every field whose value is exactly
// zero. Negative and NaN values pass.
func (t *Tracker) Validate() FieldErrors {
	errs := FieldErrors{}
	for _, f := range Fields {
		if t.draft.Get(f) == 0 {
			errs[f] = f.requiredMessage()
		}
	}
	return errs
}

// Save appends the draft when it validates and resets the form. Otherwise the
// validation result replaces the current errors and the list is untouched.
func (t *Tracker) Save() bool {
	errs := t.Validate()
	if len(errs) > 0 {
		t.errors = errs
		return false
	}

	t.measurements = append(t.measurements, t.draft)
	t.draft = Measurement{}
	t.errors = FieldErrors{}
	t.chart = DeriveChart(t.measurements)
	return true
}

// Draft returns the in-progress measurement.
func (t *Tracker) Draft() Measurement {
	return t.draft
}

// Error returns the message recorded for f, if any.
func (t *Tracker) Error(f Field) (string, bool) {
	msg, ok := t.errors[f]
	return msg, ok
}

// Errors returns a copy of the current field errors.
func (t *Tracker) Errors() FieldErrors {
	out := make(FieldErrors, len(t.errors))
	for f, msg := range t.errors {
		out[f] = msg
	}
	return out
}

// Measurements returns a copy of the saved list in insertion order.
func (t *Tracker) Measurements() []Measurement {
	out := make([]Measurement, len(t.measurements))
	copy(out, t.measurements)
	return out
}

// Len reports how many measurements have been saved.
func (t *Tracker) Len() int {
	return len(t.measurements)
}

// Chart returns the series derived from the saved list.
func (t *Tracker) Chart() ChartData {
	return t.chart
}
