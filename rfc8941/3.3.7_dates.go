package rfc8941

// §  3.3.7.  Dates (RFC 9651, optional extension)
// §
// §     A Date has the same precision and range as an Integer (see
// §     Section 3.3.1), representing a number of seconds from the
// §     Unix epoch -- 00:00:00 UTC on 1 January 1970 -- excluding leap
// §     seconds.
// §
// §       sf-date = "@" sf-integer
// §
// §     Implementations that have not opted into this extension MUST
// §     reject a leading "@" as a syntax error rather than accept it.
