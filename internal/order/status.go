package order

type Status string

const (
	StatusOrdered    Status = "ordered"
	StatusConfirmed  Status = "confirmed"
	StatusProcessing Status = "processing"
	StatusShipped    Status = "shipped"
	StatusDelivered  Status = "delivered"
)

var statusOrder = []Status{
	StatusOrdered,
	StatusConfirmed,
	StatusProcessing,
	StatusShipped,
	StatusDelivered,
}

var statusLabels = map[Status]string{
	StatusOrdered:    "Order Placed",
	StatusConfirmed:  "Confirmed",
	StatusProcessing: "Processing",
	StatusShipped:    "Shipped",
	StatusDelivered:  "Delivered",
}

// Step is the 1-based position of s in the progress table. Unknown and empty
// statuses sit at step 1.
func (s Status) Step() int {
	for i, st := range statusOrder {
		if st == s {
			return i + 1
		}
	}
	return 1
}

type StepState string

const (
	StepCompleted StepState = "completed"
	StepActive    StepState = "active"
	StepPending   StepState = "pending"
)

type Step struct {
	Status Status
	Label  string
	State  StepState
}

type Progress struct {
	Current int
	Percent float64
	Steps   []Step
}

// ProgressFor marks steps before the current one completed, the current one
// active and the rest pending. Percent is (step-1)/(steps-1)*100.
func ProgressFor(s Status) Progress {
	current := s.Step()
	p := Progress{
		Current: current,
		Percent: float64(current-1) / float64(len(statusOrder)-1) * 100,
		Steps:   make([]Step, 0, len(statusOrder)),
	}

	for i, st := range statusOrder {
		state := StepPending
		switch {
		case i+1 < current:
			state = StepCompleted
		case i+1 == current:
			state = StepActive
		}
		p.Steps = append(p.Steps, Step{Status: st, Label: statusLabels[st], State: state})
	}
	return p
}
