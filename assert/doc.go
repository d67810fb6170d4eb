/*
Package assert provides runtime invariant checks and error collection.

Invariant checks panic with the label and caller location when violated.
They guard conditions that indicate programmer error, like constructing a ring with no capacity.
To compile them out, build with the 'noassert' flag.

A [Collector] gathers validation errors so they can be reported together, rather than stopping at the first problem.
*/
package assert
