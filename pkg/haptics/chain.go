package haptics

import "log/slog"

// Chain implements Actuator by trying multiple actuators in order.
// The first successful actuator wins; if all fail, returns an aggregate
// error. The intended shape is a precision haptic engine first and a
// basic impact generator as fallback, selected once at startup.
type Chain struct {
	actuators []Actuator
	logger    *slog.Logger
}

// NewChain creates an actuator chain that tries actuators in order.
// At least one actuator is required.
func NewChain(actuators ...Actuator) (*Chain, error) {
	if len(actuators) == 0 {
		return nil, ErrNoActuator
	}

	return &Chain{
		actuators: actuators,
		logger:    slog.Default().With("component", "haptics.chain"),
	}, nil
}

// NewChainWithLogger creates an actuator chain with a custom logger.
func NewChainWithLogger(logger *slog.Logger, actuators ...Actuator) (*Chain, error) {
	chain, err := NewChain(actuators...)
	if err != nil {
		return nil, err
	}
	chain.logger = logger.With("component", "haptics.chain")
	return chain, nil
}

// Pulse tries each actuator until one succeeds.
func (c *Chain) Pulse(intensity, sharpness float64) error {
	var errs []error

	for i, a := range c.actuators {
		err := a.Pulse(intensity, sharpness)
		if err == nil {
			if i > 0 {
				c.logger.Debug("fallback actuator fired",
					"actuator_index", i,
					"intensity", intensity,
				)
			}
			return nil
		}

		errs = append(errs, err)
		c.logger.Warn("actuator failed, trying next",
			"actuator_index", i,
			"error", err,
		)
	}

	return &ChainError{Errors: errs}
}
