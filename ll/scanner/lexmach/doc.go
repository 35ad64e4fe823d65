/*
Package lexmach provides an adapter to use the lexmachine scanner generator
for reading the input tape of LL(1) parsers.

For more information on lexmachine, see e.g.
https://hackthology.com/how-to-tokenize-complex-strings-with-lexmachine.html

Package lexmach is very opinionated on how to do the setup of lexmachine:
the literals to recognize are the terminals of a grammar. White space between
tokens is skipped, thus inputs "a b d d" and "abdd" result in the same tape.

	LM, err := lexmach.ForGrammar(g)
	if err != nil {
		// do error handling
	}

A scanner is instantiated for each concrete input sequence.
The scanner implements the scanner.Tokenizer interface.

	scan, err := LM.Scanner("a b d d")
	if err != nil {
		// do error handling
	}
	sentence := scanner.Sentence(scan)

Input which does not match any terminal is not dropped, but delivered as a
token of type scanner.Unknown. Its lexeme will not match any terminal of the
grammar and recognition will reject the input at this position.

Clients who need more liberty in how to create the scanner use NewLMAdapter
directly, which accepts an initializer for additional patterns.

________________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package lexmach
