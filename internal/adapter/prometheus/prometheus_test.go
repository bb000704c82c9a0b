package prometheus

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sm8ta/webike_rental_service/internal/core/domain"
)

func TestRentLifecycleMetrics(t *testing.T) {
	a := NewPrometheusAdapter("webike_test")

	a.RecordRentStarted()
	a.RecordRentStarted()
	a.RecordRentReturned(200, 2*time.Hour)

	assert.Equal(t, 2.0, testutil.ToFloat64(a.rentsStarted))
	assert.Equal(t, 1.0, testutil.ToFloat64(a.rentsReturned))
	assert.Equal(t, 1.0, testutil.ToFloat64(a.activeRents))
	assert.Equal(t, 200.0, testutil.ToFloat64(a.revenue))
	assert.Equal(t, 1, testutil.CollectAndCount(a.rentHours))
}

func TestRecordFailureReasons(t *testing.T) {
	a := NewPrometheusAdapter("webike_test")

	a.RecordFailure("rent_bike", domain.ErrUnavailableBike)
	a.RecordFailure("rent_bike", domain.ErrUnavailableBike)
	a.RecordFailure("register_user", fmt.Errorf("%w: bad email", domain.ErrValidation))
	a.RecordFailure("find_user", errors.New("something else"))

	assert.Equal(t, 2.0, testutil.ToFloat64(a.failures.WithLabelValues("rent_bike", "unavailable_bike")))
	assert.Equal(t, 1.0, testutil.ToFloat64(a.failures.WithLabelValues("register_user", "validation")))
	assert.Equal(t, 1.0, testutil.ToFloat64(a.failures.WithLabelValues("find_user", "other")))
}

func TestRegistryGathersNamespacedMetrics(t *testing.T) {
	a := NewPrometheusAdapter("webike_test")
	a.RecordRentStarted()

	count, err := testutil.GatherAndCount(a.Registry(), "webike_test_rents_started_total")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestReason(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{domain.ErrUserNotFound, "user_not_found"},
		{domain.ErrBikeNotFound, "bike_not_found"},
		{domain.ErrUnavailableBike, "unavailable_bike"},
		{domain.ErrYouCantReturnThisBike, "rent_not_found"},
		{domain.ErrEmailRegistered, "email_registered"},
		{domain.ErrBikeRegistered, "bike_registered"},
		{domain.ErrUserHasActiveRent, "user_has_active_rent"},
		{fmt.Errorf("wrapped: %w", domain.ErrBikeNotFound), "bike_not_found"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, reason(tt.err), tt.err.Error())
	}
}
