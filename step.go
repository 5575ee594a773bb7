package panechart

import "math"

// CalcStepSize returns a "nice" step which divides rng into roughly
// targetSteps steps. The leading digit of the step is 1, 2 or 5 (or the
// step is a power of ten).
func CalcStepSize(rng, targetSteps float64) float64 {
	tempStep := rng / targetSteps
	if !(tempStep > 0) || math.IsInf(tempStep, 0) {
		return 1
	}

	mag := math.Floor(math.Log10(tempStep))
	magPow := math.Pow(10, mag)
	msd := math.Round(tempStep / magPow)

	return snapDigit(msd) * magPow
}

// CalcBoundedStepSize is like CalcStepSize but rounds the leading digit
// up so that rng is divided into at most maxSteps steps.
func CalcBoundedStepSize(rng, maxSteps float64) float64 {
	tempStep := rng / maxSteps
	if !(tempStep > 0) || math.IsInf(tempStep, 0) {
		return 1
	}

	mag := math.Floor(math.Log10(tempStep))
	magPow := math.Pow(10, mag)
	msd := math.Ceil(tempStep / magPow)

	return snapDigit(msd) * magPow
}

func snapDigit(msd float64) float64 {
	switch {
	case msd > 5:
		return 10
	case msd > 2:
		return 5
	case msd > 1:
		return 2
	}
	return 1
}

// calcMagnitude returns the engineering magnitude of the larger of min
// and max: a multiple of 3, or 0 if the plain magnitude is within ±3.
func calcMagnitude(min, max float64) int {
	minMag, maxMag := -100.0, -100.0
	if math.Abs(min) > 1e-30 {
		minMag = math.Floor(math.Log10(math.Abs(min)) + 1e-9)
	}
	if math.Abs(max) > 1e-30 {
		maxMag = math.Floor(math.Log10(math.Abs(max)) + 1e-9)
	}
	mag := math.Max(minMag, maxMag)
	if mag == -100 || math.Abs(mag) <= 3 {
		return 0
	}
	return int(math.Floor(mag/3) * 3)
}

// calcDecimals returns the number of decimals needed to tell labels
// step apart once they are divided by 10^mag.
func calcDecimals(step float64, mag int) int {
	if !(step > 0) {
		return 0
	}
	d := mag - int(math.Floor(math.Log10(step)+1e-9))
	if d < 0 {
		return 0
	}
	if d > 9 {
		return 9
	}
	return d
}
