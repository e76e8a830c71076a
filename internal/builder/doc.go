/*
Package builder turns a config.Model into concrete automata.

Construction runs in three phases:

 1. Definitions: every automaton block is built state by state. Any
    construction or transition error is reported with the block's origin.

 2. Linking: every compose block becomes a node of a dag.Graph with an edge
    from each operand. Unknown operands, duplicate names and cycles are
    rejected here.

 3. Composition: compositions are evaluated in topological order so each
    operand exists before it is used.

The resulting Set keeps definition order: plain automata first, then
compositions, each in the order they were loaded.
*/
package builder
