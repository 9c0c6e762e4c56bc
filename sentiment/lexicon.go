package sentiment

// lexicon maps lower-cased terms to a polarity weight in [-1, 1].
var lexicon = map[string]float64{
	// positive
	"amazing":    0.9,
	"appreciate": 0.6,
	"awesome":    0.9,
	"best":       0.8,
	"excellent":  0.9,
	"fantastic":  0.9,
	"fast":       0.5,
	"friendly":   0.6,
	"glad":       0.6,
	"good":       0.6,
	"great":      0.8,
	"happy":      0.8,
	"helpful":    0.6,
	"impressed":  0.7,
	"love":       0.8,
	"nice":       0.5,
	"perfect":    0.9,
	"pleased":    0.7,
	"polite":     0.5,
	"prompt":     0.5,
	"quick":      0.5,
	"recommend":  0.6,
	"resolved":   0.4,
	"satisfied":  0.7,
	"smooth":     0.5,
	"thank":      0.5,
	"thanks":     0.5,
	"wonderful":  0.9,

	// negative
	"angry":         -0.8,
	"annoyed":       -0.6,
	"awful":         -0.9,
	"bad":           -0.6,
	"broken":        -0.6,
	"cheap":         -0.3,
	"crashing":      -0.5,
	"damaged":       -0.6,
	"defective":     -0.7,
	"delay":         -0.4,
	"disappointed":  -0.7,
	"disappointing": -0.7,
	"disgusting":    -0.9,
	"frustrated":    -0.7,
	"frustrating":   -0.7,
	"furious":       -0.9,
	"hate":          -0.9,
	"horrible":      -0.9,
	"impolite":      -0.6,
	"late":          -0.4,
	"lost":          -0.5,
	"poor":          -0.6,
	"problem":       -0.4,
	"rude":          -0.8,
	"slow":          -0.5,
	"terrible":      -0.9,
	"unacceptable":  -0.8,
	"unhappy":       -0.7,
	"unhelpful":     -0.6,
	"upset":         -0.6,
	"useless":       -0.8,
	"worst":         -1.0,
	"wrong":         -0.5,
}
