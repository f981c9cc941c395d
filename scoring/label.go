package scoring

type Label string

const (
	VeryWeak   Label = "VERY WEAK"
	Weak       Label = "WEAK"
	Moderate   Label = "MODERATE"
	Strong     Label = "STRONG"
	VeryStrong Label = "VERY STRONG"
)

// Labels lists every tier from weakest to strongest.
var Labels = []Label{VeryWeak, Weak, Moderate, Strong, VeryStrong}

func LabelFor(score int) Label {
	switch {
	case score < 30:
		return VeryWeak
	case score < 50:
		return Weak
	case score < 70:
		return Moderate
	case score < 90:
		return Strong
	default:
		return VeryStrong
	}
}

func (l Label) String() string {
	return string(l)
}
