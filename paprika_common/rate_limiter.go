package paprika_common

import "golang.org/x/time/rate"

// NewRateLimiter builds a limiter guarding the unauthenticated API tier.
// rps <= 0 disables limiting.
func NewRateLimiter(rps float64) *rate.Limiter {
	if rps <= 0 {
		return nil
	}

	burst := int(rps)
	if burst < 1 {
		burst = 1
	}

	return rate.NewLimiter(rate.Limit(rps), burst)
}
