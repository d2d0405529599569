package engine

// FallbackInsight is shown when the total damage is below every threshold.
const FallbackInsight = "Stop planning. Start shipping."

// Insight pairs a total damage threshold with its message.
type Insight struct {
	Threshold float64 `json:"threshold"`
	Message   string  `json:"message"`
}

// insights is ordered by ascending threshold.
var insights = []Insight{
	{Threshold: 1000, Message: "That's a fancy dinner you could've enjoyed instead."},
	{Threshold: 5000, Message: "You could've launched an MVP by now."},
	{Threshold: 10000, Message: "That's a used car worth of overthinking."},
	{Threshold: 25000, Message: "You're in the perfectionism danger zone."},
	{Threshold: 50000, Message: "This is getting seriously expensive. Ship something!"},
	{Threshold: 100000, Message: "You could've funded a small startup with this."},
}

// Insights returns a copy of the threshold table, lowest threshold first.
func Insights() []Insight {
	out := make([]Insight, len(insights))
	copy(out, insights)
	return out
}

// SelectInsight returns the message of the highest threshold not exceeding
// totalDamage. Thresholds are inclusive lower bounds.
func SelectInsight(totalDamage float64) string {
	for i := len(insights) - 1; i >= 0; i-- {
		if totalDamage >= insights[i].Threshold {
			return insights[i].Message
		}
	}
	return FallbackInsight
}
