package cli

var PrintTenants = printTenants

var RunServer = runServer
