// Package kernel contains the shared value objects of the sales domain:
// UUID identifiers and Money. Both are immutable, validated at construction,
// and compared by value. The zero value of each is invalid; construction goes
// through the provided factory functions, enforced by ConstructorGuard.
package kernel
