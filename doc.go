/*
Package ll1 is a toolbox for table-driven top-down (LL(1)) parsing.

It focusses on the stack automaton which interprets a predictive parsing
table, either against a concrete input sentence (recognition) or against
a sequence of externally chosen productions (generation). Both modes
produce the same kind of derivation trace. Package structure is as follows:

■ ll: Package ll holds the grammar model and the LL(1) parsing table.

■ ll/automaton: Package automaton implements the stack automaton core, shared by
the drivers.

■ ll/predictive: Package predictive implements the recognition driver.

■ ll/generator: Package generator implements the generation driver, i.e. an
interactive derivation session.

■ ll/scanner: Package scanner defines tokenizers for the input tape.

The base package contains data types which are used throughout all the other packages.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package ll1
