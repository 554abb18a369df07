package order

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/YelzhanWeb/restaurant/internal/interfaces"
)

type numberGenerator struct{}

// NewNumberGenerator yields ORD-YYYYMMDD-XXXXXX numbers, the date taken from
// the order's creation time and the suffix from random UUID entropy.
func NewNumberGenerator() interfaces.OrderNumberGenerator {
	return numberGenerator{}
}

func (numberGenerator) Next(t time.Time) string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))[:6]
	return fmt.Sprintf("ORD-%s-%s", t.Format("20060102"), suffix)
}
