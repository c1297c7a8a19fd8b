package explosion

const (
	DecayScale = 1000.0     // velocity is scaled by Decay/DecayScale each step
	InertDecay = DecayScale // sentinel: the cell is not animated
	Falloff    = 3.0        // speed ~ 1/(Falloff*distance), decay loss ~ Falloff*distance
)
