package driver

import (
	"context"
	"fmt"
	"sync"

	"github.com/d21d3q/gocombustion/internal/advert"
)

// Detection contains minimal information required to identify a driver.
type Detection struct {
	ProductType advert.ProductType
}

// Driver turns a decoded advertisement into product specific fields.
type Driver interface {
	Name() string
	Process(context.Context, *advert.ProbeAdvertisement) (map[string]any, error)
}

var (
	regMu    sync.RWMutex
	registry []registeredDriver
)

type registeredDriver struct {
	detect Detection
	driver Driver
}

// Register stores a driver/detection pair in memory.
func Register(det Detection, drv Driver) {
	regMu.Lock()
	defer regMu.Unlock()
	registry = append(registry, registeredDriver{detect: det, driver: drv})
}

// Lookup returns the first driver that matches the detection key.
func Lookup(det Detection) (Driver, error) {
	regMu.RLock()
	defer regMu.RUnlock()
	for _, rd := range registry {
		if rd.detect.ProductType == det.ProductType {
			return rd.driver, nil
		}
	}
	return nil, fmt.Errorf("driver not found for product type %d (%s)", uint8(det.ProductType), det.ProductType)
}

// CommonFields returns the fields every driver reports.
func CommonFields(adv *advert.ProbeAdvertisement) map[string]any {
	return map[string]any{
		"_":        "advertisement",
		"id":       adv.SerialNumber,
		"product":  adv.ProductType.String(),
		"mode":     adv.Mode.String(),
		"color":    adv.Color.String(),
		"probe_id": int64(adv.ID.Value()) + 1,
	}
}
