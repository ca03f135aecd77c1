package probe

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/d21d3q/gocombustion/internal/advert"
	"github.com/d21d3q/gocombustion/internal/driver"
)

func TestDriverRegistered(t *testing.T) {
	drv, err := driver.Lookup(driver.Detection{ProductType: advert.ProductPredictiveProbe})
	require.NoError(t, err)
	require.Equal(t, "probe", drv.Name())
}

func TestDriverProcess(t *testing.T) {
	packet := make([]byte, 20)
	packet[0] = 0x01
	copy(packet[1:5], []byte{0x05, 0x52, 0x00, 0x10})
	packet[18] = 0b1110_0011
	adv, err := advert.Decode(packet)
	require.NoError(t, err)

	fields, err := (Driver{}).Process(context.Background(), &adv)
	require.NoError(t, err)
	require.Equal(t, "10005205", fields["id"])
	require.Equal(t, "error", fields["mode"])
	require.Equal(t, int64(8), fields["probe_id"])
	require.Equal(t, false, fields["instant_read"])
	require.Equal(t, true, fields["mode_error"])
}
