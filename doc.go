/*
Package somajo is a tokenizer for German and English web and social media
texts. It implements the tokenization guidelines of the EmpiriST 2015
shared task on automatic linguistic annotation of computer-mediated
communication / social media.

Usage

Create an instance for a fixed configuration and feed it paragraphs:

	smj := somajo.New(somajo.Options{Language: "de", TokenClasses: true})
	for _, rec := range smj.TokenizeText("Das ist z.B. ein Test :-)") {
		fmt.Println(rec.Text, rec.Class)
	}

Besides plain paragraphs the package reads whole text files, one paragraph
per line or with blank-line separated paragraphs, and XML documents. For
XML input, tags pass through the tokenizer untouched and AnnotateXML
writes the tokenization back into the document structure.

Tokens come with a token class (URL, emoticon, abbreviation, number and so
on) and, on request, with alignment metadata: SpaceAfter=No for tokens not
followed by whitespace in the source, and OriginalSpelling for tokens
whose text deviates from the source, for example obfuscated e-mail
addresses written with spaces.

The rule catalogue itself lives in the tokenizer subpackage; the token
data model in the token subpackage.

Status

The tokenizer reproduces the behavior evaluated in the EmpiriST 2015
shared task, where it achieved the best results for tokenization.

______________________________________________________________________

This package relies on the tracing facility of the schuko module.
Tracing output during tokenization can be activated by redirecting the
core tracer.
*/
package somajo
