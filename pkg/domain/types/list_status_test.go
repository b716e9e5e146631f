package types_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/openarchief/vernietiging/pkg/domain/types"
)

func TestListStatus_CanTransition(t *testing.T) {
	tests := []struct {
		name string
		from types.ListStatus
		to   types.ListStatus
		want bool
	}{
		{
			name: "in progress to processing",
			from: types.ListStatusInProgress,
			to:   types.ListStatusProcessing,
			want: true,
		},
		{
			name: "processing to completed",
			from: types.ListStatusProcessing,
			to:   types.ListStatusCompleted,
			want: true,
		},
		{
			name: "in progress to completed skips processing",
			from: types.ListStatusInProgress,
			to:   types.ListStatusCompleted,
			want: false,
		},
		{
			name: "completed is terminal",
			from: types.ListStatusCompleted,
			to:   types.ListStatusInProgress,
			want: false,
		},
		{
			name: "processing cannot go back",
			from: types.ListStatusProcessing,
			to:   types.ListStatusInProgress,
			want: false,
		},
		{
			name: "no self transition",
			from: types.ListStatusProcessing,
			to:   types.ListStatusProcessing,
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.want {
				gt.B(t, tt.from.CanTransition(tt.to)).True()
			} else {
				gt.B(t, tt.from.CanTransition(tt.to)).False()
			}
		})
	}
}

func TestListStatus_IsValid(t *testing.T) {
	for _, s := range types.AllListStatuses() {
		gt.B(t, s.IsValid()).True()
	}
	gt.B(t, types.ListStatus("aborted").IsValid()).False()
	gt.B(t, types.ListStatus("").IsValid()).False()
}

func TestParseListStatus(t *testing.T) {
	status, err := types.ParseListStatus("in_progress")
	gt.NoError(t, err)
	gt.Value(t, status).Equal(types.ListStatusInProgress)

	_, err = types.ParseListStatus("bogus")
	gt.Error(t, err)
}
