/*
Package strfunc evaluates the single-argument SQL string built-ins.

# Overview

Each built-in is an Operation from a closed set:

	ASCII  CHAR  LCASE  UCASE  LENGTH  RTRIM  LTRIM  SPACE  BIT_LENGTH  CHAR_LENGTH

An operation requires either a TextLike argument (text or a single character)
or a Numeric one (an integer). Evaluation is a pure function of the operation
and the argument:

	v, err := strfunc.Evaluate(strfunc.Ucase, strfunc.NewTextValue("straße"))
	fmt.Println(v.AsString()) // STRASSE

	v, err = strfunc.Evaluate(strfunc.Space, strfunc.NewTextValue("A"))
	fmt.Println(err) // A number is required; received [A]

# NULL Handling

NULL input always yields NULL, for every operation, before any validation.
Some operations also produce NULL from non-NULL input:

	CHAR(256)    // NULL, outside 0..255
	CHAR(-1)     // NULL
	SPACE(-1)    // NULL
	SPACE(0)     // '' (empty text, not NULL)
	ASCII('')    // NULL, there is no first character

# Text Semantics

  - Casing uses full Unicode case mapping under the root locale and never
    consults the process locale. LCASE('İ') is "i̇" (two code points) and
    UCASE('ß') is "SS".
  - LENGTH counts code points after trailing whitespace is removed.
    CHAR_LENGTH counts all code points.
  - BIT_LENGTH is eight times the UTF-8 byte length.
  - A char argument is treated exactly as one-character text.

# Errors

Dispatch fails only with *CategoryMismatchError. Its message names the
required category and quotes the argument:

	A string/char is required; received [123]
	A number is required; received [A]

Decoding a name or wire ordinal outside the set yields *UnknownOperationError.
Both unwrap to package sentinels for errors.Is.

# Thread Safety

Operations, Processors and the Registry returned by DefaultRegistry are
immutable. Any number of goroutines may evaluate concurrently.
*/
package strfunc
