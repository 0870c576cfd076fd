package linearmap

type Stats struct {
	Size       int
	Capacity   int
	LoadFactor float32

	// Longest distance, in slots, between a key's preferred slot and the
	// slot it is stored in.
	MaxProbeLength int

	// Number of times the table doubled its capacity.
	Grows int
}
