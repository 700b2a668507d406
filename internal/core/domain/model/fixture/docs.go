// Package fixture describes the units of work a seeding run submits to the
// backend: order plans paired with delivery addresses from a fixed pool.
//
// Fixtures are generated once at the start of a run by GenerateFixtures, a
// pure function with deterministic pairing (fixture i takes pool[i mod N]).
// Nothing in this package performs I/O; the catalog can be rebuilt from the
// same inputs and always yields the same output.
package fixture
