// Package hyperbolic provides stateless coordinate transforms between
// models of hyperbolic space: the hyperboloid (Minkowski) model and the
// Klein ball model.
//
// Convention: the Lorentzian form on R^{n,1} has signature (n, 1) with
// the LAST coordinate timelike,
//
//	⟨u, v⟩ = u₀v₀ + … + u_{n−1}v_{n−1} − u_n v_n,
//
// and the hyperboloid model is the upper sheet {⟨v, v⟩ = −1, v_n > 0}.
//
// All functions are pure float64 computations with an explicit
// tolerance where a comparison needs one (DefaultEpsilon). The package
// is an independent numeric utility: it neither imports nor is imported
// by the numbers-game engine.
package hyperbolic
