// internal is internal packages for nlconv.
//
// Internal packages do not dependents on each other.
// The statfmt package depends only on the public lib-newline package.
//
// The nlerr package and the testutil package is exception cases for this rule.
// These packages used by other packages.
package internal
