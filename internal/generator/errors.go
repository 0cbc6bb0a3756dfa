package generator

import "errors"

// ErrPolicy is returned when a policy cannot be satisfied. It is wrapped with
// the reason.
var ErrPolicy = errors.New("invalid password policy")
