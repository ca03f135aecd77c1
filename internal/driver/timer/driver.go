package timer

import (
	"context"

	"github.com/d21d3q/gocombustion/internal/advert"
	"github.com/d21d3q/gocombustion/internal/driver"
)

func init() {
	driver.Register(driver.Detection{ProductType: advert.ProductKitchenTimer}, Driver{})
}

// Driver reports kitchen timer and repeater advertisements. Both products
// share product type 2 and cannot be told apart from the packet alone.
type Driver struct{}

// Name returns the canonical driver name.
func (Driver) Name() string { return "timer" }

// Process returns the common fields flagged as possibly coming from a repeater.
func (Driver) Process(_ context.Context, adv *advert.ProbeAdvertisement) (map[string]any, error) {
	fields := driver.CommonFields(adv)
	fields["repeater_possible"] = true
	return fields, nil
}
