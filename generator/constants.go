package generator

//-----------------------------------------------------------------------------
// Method name constants, used to prefix errors.
//-----------------------------------------------------------------------------

const (
	methodFromScratch    = "FromScratch"
	methodFromTree       = "FromTree"
	methodFromRandomTree = "FromRandomTree"
)

//-----------------------------------------------------------------------------
// Bounds
//-----------------------------------------------------------------------------

// MinVertices is the smallest vertex universe FromScratch accepts.
const MinVertices = 1

// MinPartition is the smallest size of either side in FromTree.
const MinPartition = 1

// MinTreeNodes is the smallest tree FromRandomTree accepts. A single node
// would become a hyperedge with no vertices.
const MinTreeNodes = 2

// MinProbability is the inclusive lower bound for p.
const MinProbability = 0.0

// MaxProbability is the inclusive upper bound for p.
const MaxProbability = 1.0
