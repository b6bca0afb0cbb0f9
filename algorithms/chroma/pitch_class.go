package chroma

// PitchClass identifies one of the 12 pitch classes of 12-tone equal
// temperament with C = 0. Octaves are collapsed, so pitch class arithmetic
// is modulo 12.
type PitchClass int

const (
	C PitchClass = iota
	CSharp
	D
	DSharp
	E
	F
	FSharp
	G
	GSharp
	A
	ASharp
	B
)

// NumPitchClasses is the size of the chroma domain.
const NumPitchClasses = 12

var pitchClassNames = [NumPitchClasses]string{
	"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B",
}

func (pc PitchClass) String() string {
	return pitchClassNames[mod12(int(pc))]
}

// Transpose shifts the pitch class by the given number of semitones,
// wrapping around the octave. Negative shifts are allowed.
func (pc PitchClass) Transpose(semitones int) PitchClass {
	return PitchClass(mod12(int(pc) + semitones))
}

func mod12(n int) int {
	return ((n % NumPitchClasses) + NumPitchClasses) % NumPitchClasses
}
