package config

const linearTOML = `
title = "Workstation"

[[steps]]
id = "name"
title = "Your name"
required = true

[[steps]]
id = "machine"
kind = "choice"
title = "Machine"

  [[steps.options]]
  label = "Laptop"

  [[steps.options]]
  label = "Desktop"

[[steps]]
id = "done"
kind = "summary"
title = "All set"
`

const chainTOML = `
title = "Branching"
strategy = "chain"
buttons = "vertical"

[[steps]]
id = "machine"
kind = "choice"
title = "Machine"
next = "done"

  [[steps.options]]
  label = "Laptop"
  next = "battery"

  [[steps.options]]
  label = "Desktop"

[[steps]]
id = "battery"
title = "Battery profile"
next = "done"

[[steps]]
id = "done"
kind = "summary"
title = "All set"
`
