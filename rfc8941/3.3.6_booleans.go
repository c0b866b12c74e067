package rfc8941

// §  3.3.6.  Booleans
// §
// §     A Boolean is a symbol that can have one of two values: true or
// §     false.
// §
// §       sf-boolean = "?" boolean
// §       boolean    = "0" / "1"
