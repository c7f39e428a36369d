package main

import "fmt"

func printUsage() {
	fmt.Println("usage: orgpull <command> [flags]")
	fmt.Println()
	fmt.Println("commands:")
	fmt.Println("  check         print the organization change fingerprint as a version list")
	fmt.Println("  fetch <dest>  write the account inventory to <dest>/accounts.yaml")
	fmt.Println("  push          validate configuration and do nothing (write direction is disabled)")
	fmt.Println("  version       print the CLI version")
	fmt.Println()
	fmt.Println("every command reads a JSON configuration envelope from stdin unless -input is given")
}

func printCheckUsage() {
	fmt.Println("usage: orgpull check [-input <path>]")
	fmt.Println()
	fmt.Println("flags:")
	fmt.Println("  -input <path>  read the configuration envelope from a file instead of stdin")
}

func printFetchUsage() {
	fmt.Println("usage: orgpull fetch [-input <path>] [-json] <dest>")
	fmt.Println()
	fmt.Println("flags:")
	fmt.Println("  -input <path>  read the configuration envelope from a file instead of stdin")
	fmt.Println("  -json          emit a JSON result envelope")
}

func printPushUsage() {
	fmt.Println("usage: orgpull push [-input <path>] [-json]")
	fmt.Println()
	fmt.Println("flags:")
	fmt.Println("  -input <path>  read the configuration envelope from a file instead of stdin")
	fmt.Println("  -json          emit a JSON result envelope")
}
