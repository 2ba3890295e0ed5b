package cli

// asciiLogo is printed by the root help text and the version command.
const asciiLogo = `
┌───────────────────────────────────────┐
│  istar2uvl                            │
│  i* goal models → UVL feature models  │
└───────────────────────────────────────┘`
