/*
Package vm implements a virtual machine for IAL (IPPcode23), an educational
three-address instruction language delivered to the interpreter as XML.

The design follows the micro-architecture this project's interpreters have
always favoured: a dense value model, a dispatch loop that decodes one
instruction at a time, and a closed set of opcode handlers, each implementing
only the stages it needs. Unlike a register machine, IAL has no memory
address space to speak of -- its state lives entirely in typed variable
frames.

# Frames #

Every variable lives in one of three frames:

  - the global frame (GF), which exists for the lifetime of the program;
  - the temporary frame (TF), a single register that is either absent or a
    fresh, empty frame created by CREATEFRAME;
  - the local frame stack (LF), a LIFO of frames pushed by PUSHFRAME and
    popped by POPFRAME.

A variable must be declared with DEFVAR in its frame before it can be read or
written; the loader does not pre-scan for DEFVAR, so this is checked at
execution time, per instruction.

# Values #

A Value is one of Int, String, Bool, Nil, or the sentinel Unset, which marks
a declared-but-never-assigned slot. Unset is deliberately not the same as
Nil: reading an Unset slot through an ordinary operand raises ErrValueMissing,
while Nil is an ordinary first-class value that compares equal only to
itself.

# Labels, the data stack, and the call stack #

A label table mapping label names to program-counter indices is built once,
in the loader's second pass, before any instruction executes (see the
Program type and Load). The data stack holds typed values for PUSHS/POPS;
the call stack holds return addresses for CALL/RETURN.

# Errors #

Every fault the interpreter can raise maps to exactly one process exit code.
See errors.go.
*/
package vm
