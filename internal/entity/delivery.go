package entity

// DeliveryResult is the outcome of one best-effort side effect (CRM contact
// creation, chat notification, column webhook). Failures are values, not
// errors: the caller records them and moves on.
type DeliveryResult struct {
	Target    string `json:"target"`
	Delivered bool   `json:"delivered"`
	Reason    string `json:"reason,omitempty"`
}

func Delivered(target string) DeliveryResult {
	return DeliveryResult{Target: target, Delivered: true}
}

func NotDelivered(target string, err error) DeliveryResult {
	r := DeliveryResult{Target: target}
	if err != nil {
		r.Reason = err.Error()
	}

	return r
}
