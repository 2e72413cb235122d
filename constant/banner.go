package constant

// Banner is printed above the root command's long help.
const Banner = `
 ___                         ___ _
| _ ) ___  ___ _ __  ___ _ _| _ \ |_  _ ___
| _ \/ _ \/ _ \ '  \/ -_) '_|  _/ | || (_-<
|___/\___/\___/_|_|_\___|_| |_| |_|\_,_/__/
`
