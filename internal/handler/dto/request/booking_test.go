//go:build unit

package request_test

import (
	"encoding/json"
	"testing"

	reqdto "meeting-room-booking/internal/handler/dto/request"
	"meeting-room-booking/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateBookingRequest_People(t *testing.T) {
	existing := builder.NewBookingBuilder().MustBuildDomain()
	require.NotNil(t, existing.People())

	tests := []struct {
		name string
		body string
		want *int
	}{
		{name: "omitted keeps the stored count", body: `{"remark":"moved"}`, want: existing.People()},
		{name: "explicit null clears it", body: `{"people": null}`, want: nil},
		{name: "value replaces it", body: `{"people":2}`, want: intPtr(2)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req reqdto.UpdateBookingRequest
			require.NoError(t, json.Unmarshal([]byte(tt.body), &req))

			got := req.ToDomain(existing)
			assert.Equal(t, tt.want, got.People)
			assert.Equal(t, existing.Room(), got.Room)
			assert.Equal(t, existing.Start(), got.Start)
		})
	}
}

func TestUpdateBookingRequest_UnknownField(t *testing.T) {
	var req reqdto.UpdateBookingRequest
	err := json.Unmarshal([]byte(`{"people":null,"seats":3}`), &req)
	assert.Error(t, err)
}

func TestUpdateBookingRequest_MarshalOmitsUnset(t *testing.T) {
	remark := "moved"
	b, err := json.Marshal(reqdto.UpdateBookingRequest{Remark: &remark})
	require.NoError(t, err)
	assert.JSONEq(t, `{"remark":"moved"}`, string(b))
}

func intPtr(v int) *int { return &v }
