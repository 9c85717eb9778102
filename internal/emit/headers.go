package emit

// Static boilerplate placed at the top of freshly created destination
// files. Each dialect gets its own header; the generated body text is
// identical across dialects.

// HeaderPi is the boilerplate header for the .pi dialect.
const HeaderPi = `# -*- coding: utf-8 -*-
#---------------------------------------------------------------------------
# This file is generated by the interface stub generator.
# Do not edit by hand.
#
# The *.pi files give IDE code analysis more information about extension
# types and methods than it can glean from introspection. They are not
# meant to be imported or executed, only read by development tools.
#---------------------------------------------------------------------------

`

// HeaderPyi is the boilerplate header for the .pyi dialect.
const HeaderPyi = `# -*- coding: utf-8 -*-
#---------------------------------------------------------------------------
# This file is generated by the interface stub generator.
# Do not edit by hand.
#
# The *.pyi files provide development tools with PEP 484 style
# information about extension types and methods. They are not meant to
# be imported or executed, only read by development tools.
#
# See: https://www.python.org/dev/peps/pep-0484/
#---------------------------------------------------------------------------

`

// TypingImports is the import prelude spliced into every destination
// file as its own section, ahead of the generated module body.
const TypingImports = `from __future__ import annotations
from enum import IntEnum, IntFlag, auto
from typing import (Any, overload, TypeAlias, TypeVar, Generic,
    Union, Optional, List, Tuple, Callable
)

`

// TypingImportsSection is the section name owning the import prelude.
const TypingImportsSection = "typing-imports"
