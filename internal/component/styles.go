package component

// Default class tokens. They are utility classes understood by the site
// stylesheet; components forward them without interpretation.
var (
	containerOuterClasses = []string{"sm:px-8"}
	containerFrameClasses = []string{"mx-auto", "w-full", "max-w-7xl", "lg:px-8"}
	containerInnerClasses = []string{"relative", "px-4", "sm:px-8", "lg:px-12"}
	containerBodyClasses  = []string{"mx-auto", "max-w-2xl", "lg:max-w-5xl"}

	sectionClasses        = []string{"md:border-l", "md:border-zinc-100", "md:pl-6", "md:dark:border-zinc-700/40"}
	sectionGridClasses    = []string{"grid", "max-w-3xl", "grid-cols-1", "items-baseline", "gap-y-8", "md:grid-cols-4"}
	sectionHeadingClasses = []string{"text-sm", "font-semibold", "text-zinc-800", "dark:text-zinc-100"}
	sectionBodyClasses    = []string{"md:col-span-3"}

	cardClasses            = []string{"group", "relative", "flex", "flex-col", "items-start"}
	cardTitleClasses       = []string{"text-base", "font-semibold", "tracking-tight", "text-zinc-800", "dark:text-zinc-100"}
	cardLinkOverlayClasses = []string{"absolute", "-inset-x-4", "-inset-y-6", "z-20", "sm:-inset-x-6", "sm:rounded-2xl"}
	cardLinkLabelClasses   = []string{"relative", "z-10"}
	cardDescriptionClasses = []string{"relative", "z-10", "mt-2", "text-sm", "text-zinc-600", "dark:text-zinc-400"}

	listClasses     = []string{"space-y-16"}
	headlineClasses = []string{"text-4xl", "font-bold", "tracking-tight", "text-zinc-800", "sm:text-5xl", "dark:text-zinc-100"}
	introClasses    = []string{"mt-6", "text-base", "text-zinc-600", "dark:text-zinc-400"}
	proseClasses    = []string{"mt-6", "space-y-7", "text-base", "text-zinc-600", "dark:text-zinc-400"}

	socialItemClasses     = []string{"flex"}
	socialSpacingClasses  = []string{"mt-4"}
	socialEmphasisClasses = []string{"mt-8", "border-t", "border-zinc-100", "pt-8", "dark:border-zinc-700/40"}
	socialLinkClasses     = []string{"group", "flex", "text-sm", "font-medium", "text-zinc-800", "transition", "hover:text-teal-500", "dark:text-zinc-200", "dark:hover:text-teal-500"}
	socialIconClasses     = []string{"h-6", "w-6", "flex-none", "fill-zinc-500", "transition", "group-hover:fill-teal-500"}
	socialLabelClasses    = []string{"ml-4"}

	portraitFrameClasses = []string{"max-w-xs", "px-2.5", "lg:max-w-none"}
	portraitImageClasses = []string{"rotate-3", "rounded-2xl", "bg-zinc-100", "object-cover", "dark:bg-zinc-800"}
)
