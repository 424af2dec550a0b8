package taxonomy

import "testing"

// TestNormalize_MetricStripping verifies that embedded sets/reps, distances,
// weights, durations, and intensity annotations are removed before alias
// lookup, so metrically different prescriptions of the same movement
// normalize identically.
func TestNormalize_MetricStripping(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"Sled Push 4x25m", "sled push"},
		{"Sled Push 50m @80%", "sled push"},
		{"Wall Balls 3x20 @ 9kg", "wall balls"},
		{"Run 5km", "run"},
		{"SkiErg 1000m", "ski erg"},
		{"Farmers Carry 2 x 50 meters", "farmers carry"},
		{"Easy Run 30min", "easy run"},
		{"Deadlifts 5x5 @ 100 kg", "deadlift"},
		{"Plank 3 x 60 sec", "plank"},
		{"Rowing 2000 meters", "rowing"},
	}
	for _, tc := range cases {
		got := Normalize(tc.input)
		if got != tc.want {
			t.Errorf("Normalize(%q) = %q, want %q", tc.input, got, tc.want)
		}
	}
}

// TestNormalize_Aliases verifies abbreviation, brand-name, and German
// variants resolve to the canonical vocabulary.
func TestNormalize_Aliases(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"BBJ", "burpee broad jump"},
		{"Prowler Push", "sled push"},
		{"Concept2 Row", "rowing"},
		{"C2 Ski", "ski erg"},
		{"Farmer's Walk", "farmers carry"},
		{"Wallball", "wall balls"},
		{"Tempolauf", "tempo run"},
		{"Kniebeugen", "squat"},
		{"Klimmzüge", "pull up"},
		{"Schlitten schieben", "sled push"},
		{"Rudern", "rowing"},
		{"Jogging", "easy run"},
		{"400m Repeats", "interval run"},
		{"Zone 2 Run", "easy run"},
	}
	for _, tc := range cases {
		got := Normalize(tc.input)
		if got != tc.want {
			t.Errorf("Normalize(%q) = %q, want %q", tc.input, got, tc.want)
		}
	}
}

// TestNormalize_SubstringFallback verifies that names with extra words still
// canonicalize via the longest-alias-first substring pass.
func TestNormalize_SubstringFallback(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"Heavy Prowler Push intervals", "heavy sled push interval run"},
		{"Sandbag Walking Lunges 100m", "sandbag lunges"},
		{"Assault Bike sprint intervals", "assault bike sprint interval run"},
	}
	for _, tc := range cases {
		got := Normalize(tc.input)
		if got != tc.want {
			t.Errorf("Normalize(%q) = %q, want %q", tc.input, got, tc.want)
		}
	}
}

// TestNormalize_Idempotent verifies that normalizing twice equals
// normalizing once, the invariant that lets callers normalize defensively
// without double-transforming already-canonical names.
func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{
		"Sled Push 4x25m",
		"SkiErg 1000m",
		"BBJ x20",
		"ski erg",
		"Concept2 Row 2000m",
		"Bent Over Rows 4x8 @ 60kg",
		"Tempolauf 8km",
		"Wall Balls",
		"sandbag lunges",
		"Heavy Sandbag Lunges",
		"Assault Bike sprint intervals",
		"totally unknown movement",
		"",
	}
	for _, in := range inputs {
		once := Normalize(in)
		twice := Normalize(once)
		if once != twice {
			t.Errorf("Normalize(%q): not idempotent: first %q, second %q", in, once, twice)
		}
	}
}

// TestNormalize_CanonicalPhrasesStable verifies that a word belonging to a
// longer canonical phrase present in the name is never rewritten on its own:
// "lunges" must survive inside "sandbag lunges" and "bike" inside
// "assault bike", while the same words still canonicalize when standing alone.
func TestNormalize_CanonicalPhrasesStable(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"sandbag lunges", "sandbag lunges"},
		{"Sandbag Lunges 100m", "sandbag lunges"},
		{"Heavy Sandbag Lunges", "heavy sandbag lunges"},
		{"assault bike", "assault bike"},
		{"Walking Lunges", "lunge"},
		{"Bike 30min", "cycling"},
	}
	for _, tc := range cases {
		got := Normalize(tc.input)
		if got != tc.want {
			t.Errorf("Normalize(%q) = %q, want %q", tc.input, got, tc.want)
		}
	}
}

// TestNormalize_UnknownPassthrough verifies unrecognized names survive
// lowercased and stripped rather than erroring or vanishing.
func TestNormalize_UnknownPassthrough(t *testing.T) {
	got := Normalize("Underwater Basket Weaving 3x10")
	if got != "underwater basket weaving" {
		t.Errorf("Normalize(unknown) = %q, want %q", got, "underwater basket weaving")
	}
	if got := Normalize(""); got != "" {
		t.Errorf("Normalize(\"\") = %q, want \"\"", got)
	}
}
