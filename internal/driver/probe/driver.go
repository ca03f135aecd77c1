package probe

import (
	"context"

	"github.com/d21d3q/gocombustion/internal/advert"
	"github.com/d21d3q/gocombustion/internal/driver"
)

func init() {
	driver.Register(driver.Detection{ProductType: advert.ProductPredictiveProbe}, Driver{})
}

// Driver reports predictive probe advertisements.
type Driver struct{}

// Name returns the canonical driver name.
func (Driver) Name() string { return "probe" }

// Process adds probe state flags on top of the common fields.
func (Driver) Process(_ context.Context, adv *advert.ProbeAdvertisement) (map[string]any, error) {
	fields := driver.CommonFields(adv)
	fields["instant_read"] = adv.Mode == advert.ModeInstantRead
	fields["mode_error"] = adv.Mode == advert.ModeError
	return fields, nil
}
