package units

// JoulesToEV converts energy from joules to electron volts.
func JoulesToEV(joules float64) float64 {
	return joules * JoulesToEVFactor
}

// EVToJoules converts energy from electron volts to joules.
func EVToJoules(ev float64) float64 {
	return ev * EVToJoulesFactor
}

// AMUToKg converts mass from atomic mass units to kilograms.
func AMUToKg(amu float64) float64 {
	return amu * AMUToKgFactor
}

// KgToAMU converts mass from kilograms to atomic mass units.
func KgToAMU(kg float64) float64 {
	return kg * KgToAMUFactor
}

// Clamp limits value to the [min, max] interval.
func Clamp(value, min, max float64) float64 {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

// Lerp linearly interpolates between a and b by factor t.
func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}
