// Package optimize rewrites IR graphs into cheaper equivalent forms.
//
// The Optimizer walks a graph bottom-up and offers every node to each Rule.
// A rule either returns the ref it was given, meaning it does not apply, or
// the ref of a replacement node it added to the arena. Subtrees no rule
// touched keep their original refs, so an expression nothing applies to
// comes back as the very same root.
//
// DotProductRule turns reduce(sum) over join(mul) of two identical double
// vectors into a single DotProduct node that runs on an accel.Strategy.
package optimize
