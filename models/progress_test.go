package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusForProgress(t *testing.T) {
	cases := []struct {
		progress float64
		want     string
	}{
		{0, StatusNotStarted},
		{0.1, StatusInProgress},
		{50, StatusInProgress},
		{99.9, StatusInProgress},
		{100, StatusCompleted},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, StatusForProgress(tc.progress), "progress %v", tc.progress)
	}
}
