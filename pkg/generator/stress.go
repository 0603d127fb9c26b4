package generator

// stressForbidden keeps visually ambiguous characters out of stress-run
// passwords.
const stressForbidden = "O0Il|`'\" "

var (
	stressWordCounts = []int{3, 4, 5}
	stressLengths    = []int{12, 14, 16, 20}
	stressCases      = []Case{CaseLower, CaseUpper, CaseTitle, CaseMixed}
)

// MixedCounts reports how many passwords of each mode a stress run produced.
type MixedCounts struct {
	Memorable int
	Random    int
}

// Mixed generates count passwords, each call flipping a fair coin between
// the two modes with randomized parameters. It stops at the first failure.
func (g *Generator) Mixed(count int) (MixedCounts, error) {
	var counts MixedCounts
	for i := 0; i < count; i++ {
		if g.rnd.Intn(2) == 0 {
			opts := MemorableOptions{
				Words:     stressWordCounts[g.rnd.Intn(len(stressWordCounts))],
				Case:      stressCases[g.rnd.Intn(len(stressCases))],
				AddDigits: true,
			}
			if _, err := g.Memorable(opts); err != nil {
				return counts, err
			}
			counts.Memorable++
		} else {
			opts := RandomOptions{
				Length:       stressLengths[g.rnd.Intn(len(stressLengths))],
				IncludePunct: g.rnd.Intn(2) == 0,
				Forbidden:    stressForbidden,
			}
			if _, err := g.Random(opts); err != nil {
				return counts, err
			}
			counts.Random++
		}
	}
	return counts, nil
}
