package hashtable

// capacities is the fixed growth schedule. Every entry is prime, which keeps
// any double-hashing step coprime with the capacity (see probing's moduli
// table — the two must be extended together). Tables start at the first entry
// and only ever move forward.
var capacities = [...]uint64{
	11, 23, 47, 97, 197, 397, 797, 1597,
	3203, 6421, 12853, 25717, 51437, 102877,
	205759, 411527, 823117, 1646237, 3292489,
	6584983, 13169977, 26339969, 52679969,
	105359969, 210719881, 421439783, 842879579,
	1685759113,
}
