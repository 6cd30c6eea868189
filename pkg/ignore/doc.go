// Package ignore implements the persisted exclusion list: parsing rule
// lines into typed rules, matching candidate paths against an ordered
// rule set (first match wins, match means ignore), and appending newly
// processed files back to the list.
//
// Four rule kinds exist, classified by shape:
//
//   - "build/*"        directory prefix: the directory and everything under it
//   - "*.log"          extension glob: any path ending in .log
//   - "test_*_old.py"  general glob: shell-style matching on the relative path
//   - "src/main.py"    exact path, resolved against the scan root when relative
//
// Blank lines and lines starting with '#' are comments. A missing or
// unreadable rule file degrades to an empty rule set; the caller is
// warned but never blocked.
package ignore
