// internal/prediction/tier/classifier_test.go
package tier

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"prediction-service/internal/models"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name        string
		probability float64
		want        string
	}{
		{"well above safety", 0.95, models.TierSafety},
		{"safety boundary inclusive", 0.75, models.TierSafety},
		{"just below safety", 0.749, models.TierTarget},
		{"target boundary inclusive", 0.50, models.TierTarget},
		{"just below target", 0.499, models.TierReach},
		{"reach boundary inclusive", 0.25, models.TierReach},
		{"just below reach", 0.249, models.TierFarReach},
		{"floor", 0.0, models.TierFarReach},
		{"ceiling", 1.0, models.TierSafety},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.probability))
		})
	}
}
