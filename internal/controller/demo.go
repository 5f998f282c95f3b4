package controller

import (
	"fmt"
	"time"

	"github.com/emiliopalmerini/hyperfocus/internal/domain"
)

const demoUserName = "Demo User"

type demoSample struct {
	Type        domain.InterruptionType
	Description string
	// Offsets are minutes relative to the seeding time.
	StartOffset int
	EndOffset   int
}

var demoSamples = []demoSample{
	{domain.InterruptionPhone, "Checked WhatsApp messages", -25, -23},
	{domain.InterruptionSelf, "Opened Twitter for a quick scroll", -18, -15},
	{domain.InterruptionNoise, "Street noise outside", -10, -9},
}

func demoEmail(now time.Time) string {
	return fmt.Sprintf("demo+%d@example.com", now.UnixMilli())
}

func demoInterruptions(now time.Time) []InterruptionInput {
	out := make([]InterruptionInput, 0, len(demoSamples))
	for _, s := range demoSamples {
		out = append(out, InterruptionInput{
			Type:        s.Type,
			Description: s.Description,
			Start:       now.Add(time.Duration(s.StartOffset) * time.Minute),
			End:         now.Add(time.Duration(s.EndOffset) * time.Minute),
		})
	}
	return out
}
