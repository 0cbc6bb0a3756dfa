// Package generator produces random passwords that satisfy a
// [models.PasswordPolicy].
//
// Every character is drawn from the OS CSPRNG with rejection sampling, so each
// member of a pool is equally likely. The output always holds at least one
// character of every enabled class, and the final order comes from a
// Fisher–Yates shuffle.
package generator
