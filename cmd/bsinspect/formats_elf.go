package main

import "construct"

// elfHeaderFormat describes an ELF64 file header followed by exactly one
// program header entry, the byte layout `internal/elfx.Open` used to
// validate (by hand, against debug/elf) before this rewrite: magic,
// EI_CLASS/EI_DATA/EI_OSABI, e_type/e_machine enums, and a PT_LOAD-style
// segment's offset/address/size/flags fields. Declarative here instead of
// imperative; debug/elf plays no part.
func elfHeaderFormat() construct.Construct {
	classMap := map[any]any{1: "ELFCLASS32", 2: "ELFCLASS64"}
	dataMap := map[any]any{1: "ELFDATA2LSB", 2: "ELFDATA2MSB"}
	osabiMap := map[any]any{0: "SYSV", 3: "LINUX"}

	ident := construct.Struct("e_ident",
		construct.Const(construct.StaticField("magic", 4), []byte{0x7f, 'E', 'L', 'F'}),
		construct.MappingAdapter(construct.FormatField("class", '<', 'B'),
			classMap, reverseMap(classMap), construct.Pass, construct.Pass),
		construct.MappingAdapter(construct.FormatField("data", '<', 'B'),
			dataMap, reverseMap(dataMap), construct.Pass, construct.Pass),
		construct.Const(construct.FormatField("version", '<', 'B'), uint64(1)),
		construct.MappingAdapter(construct.FormatField("osabi", '<', 'B'),
			osabiMap, reverseMap(osabiMap), construct.Pass, construct.Pass),
		construct.FormatField("abiversion", '<', 'B'),
		construct.PaddingAdapter(construct.StaticField("", 7), 0x00, false),
	)

	typeMap := map[any]any{0: "ET_NONE", 1: "ET_REL", 2: "ET_EXEC", 3: "ET_DYN", 4: "ET_CORE"}
	machineMap := map[any]any{3: "EM_386", 62: "EM_X86_64", 183: "EM_AARCH64"}

	typeMapping := construct.MappingAdapter(construct.FormatField("e_type", '<', 'H'),
		typeMap, reverseMap(typeMap), construct.Pass, construct.Pass)

	machineMapping := construct.MappingAdapter(construct.FormatField("e_machine", '<', 'H'),
		machineMap, reverseMap(machineMap), construct.Pass, construct.Pass)

	header := construct.Struct("elf64_ehdr",
		construct.EmbedStruct(ident),
		typeMapping,
		machineMapping,
		construct.FormatField("e_version", '<', 'I'),
		construct.FormatField("e_entry", '<', 'Q'),
		construct.FormatField("e_phoff", '<', 'Q'),
		construct.FormatField("e_shoff", '<', 'Q'),
		construct.FormatField("e_flags", '<', 'I'),
		construct.FormatField("e_ehsize", '<', 'H'),
		construct.FormatField("e_phentsize", '<', 'H'),
		construct.FormatField("e_phnum", '<', 'H'),
		construct.FormatField("e_shentsize", '<', 'H'),
		construct.FormatField("e_shnum", '<', 'H'),
		construct.FormatField("e_shstrndx", '<', 'H'),
	)

	pTypeMap := map[any]any{0: "PT_NULL", 1: "PT_LOAD", 2: "PT_DYNAMIC", 3: "PT_INTERP", 4: "PT_NOTE"}

	programHeader := construct.Struct("program_header",
		construct.MappingAdapter(construct.FormatField("p_type", '<', 'I'),
			pTypeMap, reverseMap(pTypeMap), construct.Pass, construct.Pass),
		construct.FormatField("p_flags", '<', 'I'),
		construct.FormatField("p_offset", '<', 'Q'),
		construct.FormatField("p_vaddr", '<', 'Q'),
		construct.FormatField("p_paddr", '<', 'Q'),
		construct.FormatField("p_filesz", '<', 'Q'),
		construct.FormatField("p_memsz", '<', 'Q'),
		construct.FormatField("p_align", '<', 'Q'),
	)

	return construct.Struct("elfheader",
		construct.EmbedStruct(header),
		programHeader,
	)
}
