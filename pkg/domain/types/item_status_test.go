package types_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/openarchief/vernietiging/pkg/domain/types"
)

func TestItemStatus_CanTransition(t *testing.T) {
	allowed := map[types.ItemStatus][]types.ItemStatus{
		types.ItemStatusSuggested:  {types.ItemStatusRemoved, types.ItemStatusProcessing},
		types.ItemStatusProcessing: {types.ItemStatusDestroyed, types.ItemStatusFailed},
	}

	// Every pair not in the allowed map must be rejected
	for _, from := range types.AllItemStatuses() {
		for _, to := range types.AllItemStatuses() {
			want := false
			for _, next := range allowed[from] {
				if next == to {
					want = true
				}
			}

			got := from.CanTransition(to)
			if want {
				gt.B(t, got).True()
			} else {
				gt.B(t, got).False()
			}
		}
	}
}

func TestItemStatus_IsValid(t *testing.T) {
	for _, s := range types.AllItemStatuses() {
		gt.B(t, s.IsValid()).True()
	}
	gt.B(t, types.ItemStatus("deleted").IsValid()).False()
}

func TestParseItemStatus(t *testing.T) {
	status, err := types.ParseItemStatus("destroyed")
	gt.NoError(t, err)
	gt.Value(t, status).Equal(types.ItemStatusDestroyed)

	_, err = types.ParseItemStatus("")
	gt.Error(t, err)
}
