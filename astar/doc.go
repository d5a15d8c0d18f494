// Package astar implements A* shortest-path search over a grid.Map.
//
// Overview:
//
//   - FindPath computes the minimum-cost path between two traversable tiles,
//     expanding neighbors exactly as grid.Neighbors defines them, so every
//     terrain and corner-cutting rule of the map carries over unchanged.
//   - On Octile maps an orthogonal step costs 1 and a diagonal √2, with the
//     octile-distance heuristic; on 4-connected maps steps cost 1 with the
//     Manhattan heuristic. Both heuristics are admissible and consistent,
//     so reported costs match the optimal lengths published in benchmark
//     .scen files.
//
// Key features:
//
//   - Functional options tune behavior without changing the signature.
//   - WithoutPath(): skip predecessor bookkeeping, return cost only.
//   - WithMaxExpansions(n): bound the search effort; exceeding the budget
//     fails with ErrExpansionBudget instead of running the map dry.
//
// Complexity:
//
//   - Time:  O(N log N) with N = expanded tiles. Every tile is finalized
//     at most once, and each expansion pushes at most 8 heap entries under
//     the lazy decrease-key strategy.
//   - Space: O(N) for the score, predecessor, and closed sets.
//
// Error handling (sentinel errors):
//
//   - ErrNilMap: FindPath was handed a nil map.
//   - ErrStartUntraversable / ErrGoalUntraversable: an endpoint tile cannot
//     be occupied at all.
//   - ErrNoPath: the goal is unreachable from the start.
//   - ErrExpansionBudget: the WithMaxExpansions budget ran out first.
package astar
