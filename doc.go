/*
Package vedic provides a small combinational circuit core used to build the
structural Urdhva Tiryagbhyam ("vertically-crosswise") 8x8 multiplier found
in the vmul package.

The core uses Go as a bare-bones hardware description language: parts are
composed into chips by naming their pin connections, wiring is validated
when a chip is built, and a Circuit evaluates the resulting acyclic network
by propagating signals until they settle. There is no clock and no
sequential logic; every part is a pure function of its inputs.
*/
package vedic
