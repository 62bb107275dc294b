package concept

// SeedConcepts returns the built-in DSA concept corpus. It mirrors the
// graph the tutoring system is seeded with by the administrative loader:
// topics with subtopic, prerequisite, used-with and easier-than edges.
func SeedConcepts() []Concept {
	return []Concept{
		{
			ID: "big-o-notation", Name: "Big O Notation", Type: "Topic",
			Description: "Asymptotic analysis of algorithm running time and space.",
			Complexity:  "beginner", Level: 1, EstimatedHours: 4,
			KeyConcepts:           []string{"time complexity", "space complexity", "growth rates"},
			PracticalApplications: []string{"comparing algorithms", "capacity planning"},
		},
		{
			ID: "arrays", Name: "Arrays", Type: "Topic",
			Description: "Contiguous fixed-size sequences with O(1) index access.",
			Complexity:  "beginner", Level: 1, EstimatedHours: 3,
			KeyConcepts:           []string{"indexing", "iteration", "in-place updates"},
			PracticalApplications: []string{"buffers", "lookup tables"},
		},
		{
			ID: "strings", Name: "Strings", Type: "Topic",
			Description: "Character sequences and the classic manipulation patterns.",
			Complexity:  "beginner", Level: 1, EstimatedHours: 3,
			KeyConcepts: []string{"two pointers", "sliding window"},
		},
		{
			ID: "linked-lists", Name: "Linked Lists", Type: "Topic",
			Description: "Node chains with O(1) insertion and sequential access.",
			Complexity:  "beginner", Level: 2, EstimatedHours: 4,
			KeyConcepts:           []string{"pointers", "traversal", "dummy heads"},
			PracticalApplications: []string{"LRU caches", "adjacency lists"},
		},
		{
			ID: "stacks", Name: "Stacks", Type: "Subtopic",
			Description: "LIFO collections built on arrays or linked lists.",
			Complexity:  "beginner", Level: 2, EstimatedHours: 2,
			PracticalApplications: []string{"expression evaluation", "undo history"},
		},
		{
			ID: "queues", Name: "Queues", Type: "Subtopic",
			Description: "FIFO collections; the backbone of breadth-first traversal.",
			Complexity:  "beginner", Level: 2, EstimatedHours: 2,
			PracticalApplications: []string{"task scheduling", "BFS frontiers"},
		},
		{
			ID: "hash-tables", Name: "Hash Tables", Type: "Topic",
			Description: "Key-value storage with expected O(1) lookup.",
			Complexity:  "intermediate", Level: 2, EstimatedHours: 5,
			KeyConcepts:           []string{"hash functions", "collisions", "load factor"},
			PracticalApplications: []string{"indexes", "deduplication", "caching"},
		},
		{
			ID: "recursion", Name: "Recursion", Type: "Topic",
			Description: "Self-referential problem decomposition and base cases.",
			Complexity:  "intermediate", Level: 2, EstimatedHours: 5,
			KeyConcepts: []string{"base case", "call stack", "divide and conquer"},
		},
		{
			ID: "trees", Name: "Trees", Type: "Topic",
			Description: "Hierarchical node structures; traversal orders and depth.",
			Complexity:  "intermediate", Level: 3, EstimatedHours: 6,
			KeyConcepts:           []string{"traversals", "height", "balanced trees"},
			PracticalApplications: []string{"file systems", "parsers"},
		},
		{
			ID: "binary-search-trees", Name: "Binary Search Trees", Type: "Subtopic",
			Description: "Ordered binary trees with O(log n) expected operations.",
			Complexity:  "intermediate", Level: 3, EstimatedHours: 4,
			KeyConcepts: []string{"invariant", "in-order traversal", "rotations"},
		},
		{
			ID: "heaps", Name: "Heaps", Type: "Subtopic",
			Description: "Partially ordered complete trees backing priority queues.",
			Complexity:  "intermediate", Level: 3, EstimatedHours: 3,
			PracticalApplications: []string{"priority queues", "heapsort", "top-k queries"},
		},
		{
			ID: "graphs", Name: "Graphs", Type: "Topic",
			Description: "Vertices and edges; reachability, traversal and shortest paths.",
			Complexity:  "advanced", Level: 4, EstimatedHours: 8,
			KeyConcepts:           []string{"BFS", "DFS", "topological sort", "shortest paths"},
			PracticalApplications: []string{"routing", "dependency resolution", "social networks"},
		},
		{
			ID: "sorting", Name: "Sorting Algorithms", Type: "Topic",
			Description: "Comparison and non-comparison sorts and their trade-offs.",
			Complexity:  "intermediate", Level: 3, EstimatedHours: 6,
			KeyConcepts: []string{"stability", "in-place", "divide and conquer"},
		},
		{
			ID: "binary-search", Name: "Binary Search", Type: "Subtopic",
			Description: "Halving search over sorted data in O(log n).",
			Complexity:  "beginner", Level: 2, EstimatedHours: 2,
			PracticalApplications: []string{"lookup in sorted data", "answer-space search"},
		},
		{
			ID: "dynamic-programming", Name: "Dynamic Programming", Type: "Topic",
			Description: "Optimal substructure, overlapping subproblems, memoization.",
			Complexity:  "advanced", Level: 5, EstimatedHours: 10,
			KeyConcepts:           []string{"memoization", "tabulation", "state design"},
			PracticalApplications: []string{"edit distance", "resource allocation"},
		},
	}
}

// SeedRelations returns the edges for the built-in corpus.
func SeedRelations() []Relation {
	return []Relation{
		// Prerequisite chains.
		{RelPrerequisiteFor, "big-o-notation", "arrays"},
		{RelPrerequisiteFor, "arrays", "strings"},
		{RelPrerequisiteFor, "arrays", "linked-lists"},
		{RelPrerequisiteFor, "arrays", "hash-tables"},
		{RelPrerequisiteFor, "arrays", "sorting"},
		{RelPrerequisiteFor, "linked-lists", "stacks"},
		{RelPrerequisiteFor, "linked-lists", "queues"},
		{RelPrerequisiteFor, "recursion", "trees"},
		{RelPrerequisiteFor, "linked-lists", "trees"},
		{RelPrerequisiteFor, "trees", "binary-search-trees"},
		{RelPrerequisiteFor, "trees", "heaps"},
		{RelPrerequisiteFor, "trees", "graphs"},
		{RelPrerequisiteFor, "queues", "graphs"},
		{RelPrerequisiteFor, "sorting", "binary-search"},
		{RelPrerequisiteFor, "recursion", "dynamic-programming"},
		{RelPrerequisiteFor, "graphs", "dynamic-programming"},

		// Topic/subtopic structure.
		{RelHasSubtopic, "linked-lists", "stacks"},
		{RelHasSubtopic, "linked-lists", "queues"},
		{RelHasSubtopic, "trees", "binary-search-trees"},
		{RelHasSubtopic, "trees", "heaps"},
		{RelHasSubtopic, "sorting", "binary-search"},

		// Concepts commonly taught together.
		{RelUsedWith, "hash-tables", "arrays"},
		{RelUsedWith, "graphs", "queues"},
		{RelUsedWith, "graphs", "hash-tables"},
		{RelUsedWith, "sorting", "big-o-notation"},
		{RelUsedWith, "dynamic-programming", "recursion"},

		// Gentler entry points.
		{RelEasierThan, "arrays", "linked-lists"},
		{RelEasierThan, "binary-search", "sorting"},
		{RelEasierThan, "trees", "graphs"},
		{RelEasierThan, "recursion", "dynamic-programming"},
	}
}

// NewSeedGraph builds the in-memory graph over the built-in corpus.
func NewSeedGraph() (*Graph, error) {
	return NewGraph(SeedConcepts(), SeedRelations())
}
