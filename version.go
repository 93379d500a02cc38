package reshape

// Version of the reshape module.
const Version = "0.2.2"
